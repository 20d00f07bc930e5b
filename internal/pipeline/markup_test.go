package pipeline

import "testing"

func TestConvertMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only blank lines",
			input: "\n\n  \n",
			want:  "",
		},
		{
			name:  "bold and italic in one paragraph",
			input: "**bold** and *italic*",
			want:  "<p><strong>bold</strong> and <em>italic</em></p>",
		},
		{
			name:  "blank line closes list before paragraph",
			input: "- a\n- b\n\ntext",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n<p>text</p>",
		},
		{
			name:  "asterisk list markers",
			input: "* one\n* two",
			want:  "<ul>\n<li>one</li>\n<li>two</li>\n</ul>",
		},
		{
			name:  "list running to end of input is closed",
			input: "intro\n- item",
			want:  "<p>intro</p>\n<ul>\n<li>item</li>\n</ul>",
		},
		{
			name:  "paragraph directly after list closes it",
			input: "- item\nafter",
			want:  "<ul>\n<li>item</li>\n</ul>\n<p>after</p>",
		},
		{
			name:  "adjacent lines are not merged",
			input: "line one\nline two",
			want:  "<p>line one</p>\n<p>line two</p>",
		},
		{
			name:  "blank line between items starts a new list",
			input: "- a\n\n- b",
			want:  "<ul>\n<li>a</li>\n</ul>\n<ul>\n<li>b</li>\n</ul>",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   indented   \n\t- tabbed item",
			want:  "<p>indented</p>\n<ul>\n<li>tabbed item</li>\n</ul>",
		},
		{
			name:  "marker without space is a paragraph",
			input: "-item",
			want:  "<p>-item</p>",
		},
		{
			name:  "bare marker is a paragraph",
			input: "- ",
			want:  "<p>-</p>",
		},
		{
			name:  "inline formatting inside list item",
			input: "- **bold** item",
			want:  "<ul>\n<li><strong>bold</strong> item</li>\n</ul>",
		},
		{
			name:  "CRLF line endings",
			input: "a\r\nb",
			want:  "<p>a</p>\n<p>b</p>",
		},
		{
			name:  "markup is not escaped",
			input: "<b>raw</b> & more",
			want:  "<p><b>raw</b> & more</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertMarkup(tt.input)
			if got != tt.want {
				t.Errorf("ConvertMarkup(%q) =\n%q\nwant\n%q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertMarkup_Deterministic(t *testing.T) {
	t.Parallel()

	input := "Dear editor,\n\n- **one**\n- *two*\n\nRegards"
	first := ConvertMarkup(input)
	for i := 0; i < 10; i++ {
		if got := ConvertMarkup(input); got != first {
			t.Fatalf("run %d produced %q, want %q", i, got, first)
		}
	}
}

func TestFormatInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"**a**", "<strong>a</strong>"},
		{"*a*", "<em>a</em>"},
		{"a*b*c", "a<em>b</em>c"},
		{"**one** **two**", "<strong>one</strong> <strong>two</strong>"},
		{"*one* and *two*", "<em>one</em> and <em>two</em>"},
		{"*unclosed", "*unclosed"},
		{"a ** b", "a ** b"},
		{"**", "**"},
		{"2 * 3 * 4", "2 <em> 3 </em> 4"},
		{"no markers", "no markers"},
	}

	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.want {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

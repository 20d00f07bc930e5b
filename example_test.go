package letterbox_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/reasonandrage/letterbox"
)

// Example_preview shows what a submission would publish, without calling GitHub.
func Example_preview() {
	svc, err := letterbox.New(letterbox.Config{},
		letterbox.WithClock(func() time.Time { return time.UnixMilli(1_700_000_042_000) }),
	)
	if err != nil {
		log.Fatal(err)
	}

	p, err := svc.Preview(context.Background(), letterbox.Submission{
		Title:   "Hello, World!",
		Date:    "2024-03-05",
		Content: "Thanks for **everything**.",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.Branch)
	fmt.Println(p.Title)
	// Output:
	// hello-world-042000
	// Add letter: Hello, World!
}

func ExampleSlugify() {
	fmt.Println(letterbox.Slugify("  Dear Team: Thank You!  "))
	// Output: dear-team-thank-you
}

func ExampleBranchName() {
	at := time.UnixMilli(1_700_000_000_007)
	fmt.Println(letterbox.BranchName("Thank you", at))
	fmt.Println(letterbox.BranchName("***", at))
	// Output:
	// thank-you-000007
	// letter-000007
}

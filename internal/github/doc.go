// Package github is a minimal REST client for the repository operations a
// letter submission needs: reading and updating one file, resolving the
// default branch and its head, creating and deleting branch refs, and
// opening a pull request.
package github

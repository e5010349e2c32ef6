// Package crowdin provides high-level helpers for pushing localization
// sources and translations to Crowdin.
//
// The package orchestrates the Crowdin v2 API: content is first uploaded to
// temporary storage, then referenced by a file create, a file replace or a
// translation import. Folder helpers locate a directory by name and parent
// in an already fetched directory list, optionally creating it, and return
// the files it contains.
//
// Basic usage:
//
//	client, err := crowdin.New(
//	    crowdin.WithToken(os.Getenv("CROWDIN_PERSONAL_TOKEN")),
//	    crowdin.WithOrganization("acme"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	folder, err := client.UpdateSourceFiles(ctx, projectID, "docs", files, nil)
//
// Remote failures are returned exactly as the API client produced them, so
// callers can use errors.As with *errors.APIError or the sentinel errors of
// the errors package. Arguments are validated locally before any request is
// made; validation failures wrap errors.ErrInvalidInput.
//
// The Client is safe for concurrent use. No operation fans out internally:
// every call is a short, sequential chain of API requests.
package crowdin

// Package web serves the document routes over HTTP.
//
// Routes:
//   - GET /                      listing with the sign in state
//   - GET, POST /new             create form and creation (signed in)
//   - GET, POST /signin          sign in form and credential check
//   - POST /signout              sign out
//   - GET /{filename}            rendered document
//   - GET, POST /{filename}/edit edit form and update (signed in)
//   - POST /{filename}/delete    deletion (signed in)
//
// Outcomes travel to the next page as a one-shot flash message stored in the
// session; validation failures are rendered inline with status 422.
package web

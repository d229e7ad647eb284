// Package biodataform binds the biodata validator to a web page.
//
// FormService renders the form and answers the page's datastar actions:
// input, change and blur post a field to /fields/{field}, a paste into the
// birth date posts to /fields/birthDate/paste, submission posts to /submit and
// a photo selection posts the multipart form to /photo. Each action is
// validated by pkg/biodata through a presenter that records the outcome and
// replays it as element patches, signal patches and scripts on the event
// stream. Requests made without datastar get full HTML pages instead.
//
// Accepted photos are kept in a pkg/preview store and served from
// /preview/{id} until a newer selection replaces them or they are evicted.
//
// APIService exposes the same rules as JSON under /api: GET /api/fields lists
// the fields with their messages and POST /api/validate answers 200 for a valid
// form or 422 with per-field messages.
package biodataform

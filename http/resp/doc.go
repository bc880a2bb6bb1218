/*

The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides two main ways of responding to an HTTP request:
- rendering JSON data
- redirecting

Fields merge by precedence: whatever a per-call functional option sets wins
over the Responder's application-wide default, which wins over the zero-value
fallback (status 200 for JSON, 302 for redirects, a JSON content type).

*/
package resp

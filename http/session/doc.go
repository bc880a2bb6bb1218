/*

Package session manages sessions associated with HTTP requests.

The routing core treats sessions as an external collaborator: a keyed
transform over opaque payloads living in a cookie or a Redis instance.
A Service wraps the backing store and hands out a Session per request;
middleware.InjectSession promotes it into the request context.

*/
package session

/*

Package router defines what an HTTP server is and a default implementation of it.

A [Router] dispatches requests by name rather than by pattern:
paths resolve against a [routing.Table] compiled elsewhere,
and the winning route's name selects the registered handler.
The table is therefore the single authority on what matches;
the Router only pairs names with [http.HandlerFunc].

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
The name of a compiled route and a handler comprise a [Route].
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes for a web server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
It is also often the case that small errors can lead to registering a route incorrectly,
thereby unintentionally exposing a resource or not collecting data necessary for actually handling a request.
Thus, a [Router] provides conveniences for making a single call to register many logically associated Routes.

*/
package router

/*

Package routing resolves request paths against a registry of named route
patterns and, conversely, reconstructs a concrete path from a route name and
a set of bound values.

A route's pattern is an ordered sequence of [Element], each either a literal
sub-expression or a named capture group wrapping an inner expression, both
written in [regexp] syntax. [Compile] concatenates the elements' textual
forms, anchors the whole at both ends, and records any default values the
groups declared. A [Table] collects compiled routes keyed by unique name and
is immutable once constructed: build it fully, then share it across any
number of concurrent Resolve and Reverse calls without locking.

Resolution tries routes in ascending lexicographic name order, so when two
routes match the same path the smaller name deterministically wins. A group
capturing zero-length input takes its declared default instead. Reverse walks
the original, uncompiled pattern and substitutes bindings or defaults,
failing loudly when neither covers a group.

Applications assemble their []Definition explicitly, typically once at
startup, and hand them to NewTable; the package never discovers routes by
inspecting program structure.

*/
package routing

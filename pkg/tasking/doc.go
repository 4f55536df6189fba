/*
Package tasking serves an operator chosen task string over a bare HTTP/1.1 response.

The Server handles exactly one connection at a time.
For each connection it reads a single buffer of request bytes, shows them to the operator, asks the operator for the next task,
and answers with that task as a text/plain body before closing the connection.
An empty answer keeps the current task.

# Blocking behavior:

Nothing in the loop has a timeout.
A client that never sends, or an operator who never answers, holds the whole server.
Further clients wait in the listener's backlog until the loop returns to Accept.

Any failure on listen, accept, read, prompt or write ends Serve with an error.
Only decoding the request for display is lenient: invalid bytes are shown as replacement characters.
*/
package tasking

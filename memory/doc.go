// Package memory holds the in-process conversation history.
//
// Model:
//   - Only text turns are kept (role + text). Tool blocks live only inside the
//     turn that produced them.
//   - History is append-only and is dropped when the process exits.
package memory

// Package actor
// Author: momentics <momentics@gmail.com>
//
// Minimal mailbox actors: isolated handlers that communicate exclusively
// through asynchronous messages. Each actor owns one goroutine and one
// unbounded FIFO mailbox; messages from a single sender are processed in
// send order. Send is fire-and-forget, Ask is request/reply.
package actor

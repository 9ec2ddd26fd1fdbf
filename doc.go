// Package okto8 emulates the CHIP-8 virtual console: a 4K address space,
// 16 general registers, a 64x32 monochrome screen, a hex keypad and two
// countdown timers.
//
// Machine is the execution engine, advanced one instruction at a time
// through Step; it owns all mutable state and assumes serialized access.
// Console wraps a Machine with everything time-related: a speed-governed
// step loop, 60 Hz timer decay, display rendering and keyboard polling.
package okto8

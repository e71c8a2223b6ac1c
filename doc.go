/*
Package nandalu provides the signal and bus types for a gate-level simulator
that builds a 16 bits ALU out of NAND gates only.

Everything is combinational: a gate is a pure Go function of its inputs, and
composite parts are plain function calls of simpler ones. There is no clock, no
propagation delay and no wiring model. The gate library lives in hwlib, and the
ALU with its control bits in package alu.

Buses are ordered MSB first: index 0 is the most significant bit, which is also
the sign bit for two's-complement values.
*/
package nandalu

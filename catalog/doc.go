// Package catalog holds the static SIC/XE instruction, register and
// directive tables shared by both assembler passes.
//
// The tables are built once at package initialization and never modified.
package catalog

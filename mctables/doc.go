// Package mctables holds the static lookup tables that drive Simplicial
// Marching Cubes: the classical 256-case triangulation table, the
// normal-type and equation-type classifications of each cell
// configuration, and the small derived tables the planar merge and
// corner-order translation depend on.
//
// All values here are transcribed bit-exactly from the reference SMC
// implementation (original_source/include/OctreeSMC.h); nothing in this
// package is derived or re-fit. Callers index these tables directly;
// tables_test.go checks the tables' structure (row termination, edge
// range, sentinel handling) and the RemapCfgToMC, NormalType and D
// helpers, not individual transcribed values.
package mctables

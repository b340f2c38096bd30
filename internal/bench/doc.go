// Package bench is the core of the harness: it owns the fixed suite of
// test cases, instruments each optimizer invocation with an evaluation
// counter and a wall-clock timer, and converts outcomes (including
// optimizer failures) into result records.
package bench

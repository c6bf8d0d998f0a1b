// Command decisioncli exercises mdpsolve, pomdpsolve, and pbvi against
// two small built-in models (a two-state MDP and the tiger POMDP) and
// writes the resulting policy to stdout.
//
// Usage:
//
//	decisioncli -solver pomdpsolve -steps 4 -discount 0.95
//	decisioncli -solver pbvi -steps 0 -discount 0.95 -seed 7
//	decisioncli -solver mdpsolve -steps 10 -discount 0.9
//
// Exit codes follow spec.md §6: 0 success, 2 flag-parse error, 3 model
// construction error, 4 solve error, 5 output-write error.
package main

// Command wordgroups generates and checks word-grouping puzzles.
//
//	wordgroups generate --count 10 --out puzzles.json --seed 42
//	wordgroups validate puzzles.json --wordlist wordlist.json
//	wordgroups wordlist check wordlist.json
//	wordgroups wordlist clean wordlist.json --out cleaned.json
package main

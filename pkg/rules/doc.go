// Package rules holds the inflection rule table and its loader.
//
// A rule table has three groups, one per name part (lastname, firstname,
// middlename). Each group carries two ordered lists:
//
//   - exceptions are compared against the whole lower-cased word
//   - suffixes are compared against the word's ending
//
// Order is precedence. Lists are scanned front to back and the first rule
// that matches wins, so a table is never sorted or indexed after loading.
//
// # Rule Format
//
// Rules can be written in YAML, TOML or JSON; the file extension picks the
// decoder:
//
//	lastname:
//	  suffixes:
//	    - gender: male
//	      test: [ов, ев, ин]
//	      mods: ["а", "у", "а", "ым", "е"]
//	      tags: ["*"]
//
// mods always has five entries: genitive, dative, accusative, instrumental,
// prepositional. A rule with no tags is inert.
//
// # Lifecycle
//
// A loaded *Rules is never mutated. It can be shared by any number of
// inflectors and goroutines.
package rules

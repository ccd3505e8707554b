// Package subst substitutes environment-reference markers in a
// configuration document with values read from the process environment.
//
// Two marker conventions are recognized, both spelled as namespaced EDN
// keywords carrying the environment variable name:
//
//	:env/PORT       raw — replaced with the literal string value of PORT
//	:env.edn/COUNT  parsed — the value of COUNT is read as one EDN datum
//
// The parsed form is deliberately "buyer beware": a bare word becomes a
// symbol, a numeral a number, a quoted value a string. The caller is
// responsible for supplying values whose literal form parses to the
// intended type.
//
// Symbolic references (namespaced symbols) are not this package's concern;
// they pass through untouched and are resolved in a later pass.
package subst

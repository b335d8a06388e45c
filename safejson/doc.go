// Package safejson parses untrusted JSON documents into plain maps.
//
// Parsing enforces two safety guarantees on top of encoding/json: the
// top-level value must be a JSON object, and no key anywhere in the parsed
// graph may be one of the reserved prototype-affecting names (__proto__,
// constructor, prototype). The reserved-key rejection is kept for hygiene
// and cross-system compatibility: documents accepted here stay safe when
// handed to consumers whose object model has shared mutable prototypes.
package safejson

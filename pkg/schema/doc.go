// Package schema reads field definitions from YAML and turns them into rule
// sets and field controllers.
//
// A document lists fields; each field lists its rules in evaluation order:
//
//	fields:
//	  - name: email
//	    helper_text: We never share it
//	    rules:
//	      - kind: required
//	      - kind: email
//	        message: That does not look like an email
//	  - name: sku
//	    real_time: true
//	    rules:
//	      - kind: expression
//	        expr: text.startsWith("SKU-")
//	        message: SKUs start with SKU-
//	        while_editing: false
//
// Documents are checked when parsed: unknown keys, duplicate field names,
// unknown rule kinds, missing parameters and patterns or expressions that do
// not compile are all reported as errors wrapping ErrInvalidDocument or
// ErrInvalidRule.
package schema

// Package validation implements the rule-driven checks applied to submitted
// records before any use case touches a repository.
//
// A record is the decoded "data" object of a request. A Ruleset lists, in
// order, the fields a record must carry and the kind of value each must hold.
// Validate walks the rules in order and stops at the first failure, so a
// request is always rejected with exactly one error:
//
//	err := validation.Validate(record, validation.Ruleset{
//	    Subject: "Dish",
//	    Rules: []validation.Rule{
//	        {Name: "name", Kind: validation.RequiredText},
//	        {Name: "price", Kind: validation.RequiredPositiveInteger},
//	    },
//	})
//
// ValidateLines applies the positive integer rule to one field of every
// element of a nested sequence and reports the position of the first bad
// element. Run composes such checks into a pipeline that short-circuits on
// the first failing step.
package validation

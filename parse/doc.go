// Package parse turns structure sketches into build plans.
//
// # Usage
//
//	// Parse a drawn tree or a flat path list, auto-detected
//	p, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Force a dialect or an indentation mode
//	p, err := parse.Parse(data, parse.ParseList())
//	p, err := parse.Parse(data, parse.ParseMode(format.DivMode))
//
// The first entry of a sketch names the project itself and is dropped from
// the plan; [KeepRoot] disables that.
//
// # Related Packages
//
//   - github.com/SaadRayh/Project-Structure-Generator/plan - parsed plans
//   - github.com/SaadRayh/Project-Structure-Generator/token - line tokenization
//   - github.com/SaadRayh/Project-Structure-Generator/encode - plans back to text
package parse

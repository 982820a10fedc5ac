// Package standardization provides the named molecule standardization steps
// used before registration.
//
// Every step implements Standardization. Apply returns either the (possibly
// new) molecule or a *Rejection, which covers both structural checks that
// failed and toolkit computations that errored:
//
//	reg := standardization.Default()
//	steps, err := reg.Resolve([]string{"fragment_parent", "has_polymer_info"})
//	if err != nil {
//	    return err
//	}
//	outcome, err := standardization.NewPipeline(log, steps...).Run(ctx, mol)
//
// Chemistry is delegated to a toolkit.Toolkit. Default uses toolkit.Basic.
package standardization

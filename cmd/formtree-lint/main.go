// formtree-lint loads an application bundle, validates every form, and
// reports the collected diagnostics. Exit status 1 signals at least one
// error-severity finding.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	formtree "github.com/goliatone/go-formtree"
	"github.com/goliatone/go-formtree/pkg/diag"
)

func main() {
	appDir := flag.String("app", ".", "application directory containing anvil.yaml")
	allowCustom := flag.Bool("allow-custom", true, "allow dependency (form:) component references")
	flag.Parse()

	compiler := formtree.New(
		formtree.WithValidateOptions(formtree.ValidateOptions{
			AllowCustomComponents: *allowCustom,
			ValidateEventBindings: true,
			ValidateDataBindings:  true,
		}),
		formtree.WithNodeValidation(true),
	)

	result, err := compiler.CompileApp(context.Background(), os.DirFS(*appDir))
	if err != nil {
		log.Fatalf("Failed to load application: %v", err)
	}

	var all diag.List
	all = append(all, result.Diagnostics...)
	for _, form := range result.Forms {
		for _, nodeErr := range form.NodeErrors {
			all = append(all, diag.Errorf(form.Name, "%s", nodeErr.Error()))
		}
	}

	for _, d := range all {
		fmt.Println(d.String())
	}

	errs := all.Errors()
	fmt.Printf("%d form(s), %d error(s), %d warning(s)\n", len(result.Forms), len(errs), len(all.Warnings()))
	if len(errs) > 0 {
		os.Exit(1)
	}
}

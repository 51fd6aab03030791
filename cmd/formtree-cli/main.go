package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	formtree "github.com/goliatone/go-formtree"
	"github.com/goliatone/go-formtree/pkg/preview"
	"github.com/goliatone/go-formtree/pkg/tree"
)

func main() {
	appDir := flag.String("app", ".", "application directory containing anvil.yaml")
	formName := flag.String("form", "", "form to compile (interactive selection if empty)")
	format := flag.String("format", "tree", "output format: tree or html")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	compiler := formtree.New(
		formtree.WithValidateOptions(formtree.ValidateOptions{
			AllowCustomComponents: true,
			ValidateEventBindings: true,
			ValidateDataBindings:  true,
		}),
	)

	result, err := compiler.CompileApp(ctx, os.DirFS(*appDir))
	if err != nil {
		log.Fatalf("Failed to load application: %v", err)
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d.String())
	}
	if len(result.Forms) == 0 {
		log.Fatalf("No forms found in %s", *appDir)
	}

	target := *formName
	if target == "" {
		target, err = selectForm(result)
		if err != nil {
			log.Fatalf("Failed to select form: %v", err)
		}
	}

	form, ok := result.Form(target)
	if !ok {
		log.Fatalf("Form %q not found; available: %s", target, strings.Join(formNames(result), ", "))
	}

	rendered, err := renderForm(form, *format)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}

func selectForm(result *formtree.AppResult) (string, error) {
	names := formNames(result)
	if len(names) == 1 {
		return names[0], nil
	}
	var chosen string
	prompt := &survey.Select{
		Message: "Select a form to compile:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		return "", err
	}
	return chosen, nil
}

func formNames(result *formtree.AppResult) []string {
	names := make([]string, 0, len(result.Forms))
	for _, form := range result.Forms {
		names = append(names, form.Name)
	}
	return names
}

func renderForm(form *formtree.FormResult, format string) (string, error) {
	switch format {
	case "html":
		renderer, err := preview.New()
		if err != nil {
			return "", err
		}
		return renderer.Render(form.Root)
	case "tree":
		var b strings.Builder
		writeTree(&b, form.Root, 0)
		return b.String(), nil
	default:
		return "", fmt.Errorf("unknown format %q (want tree or html)", format)
	}
}

func writeTree(b *strings.Builder, node *tree.Node, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if node.IsError() {
		fmt.Fprintf(b, "%s! %s (%s): %s\n", indent, node.Type, node.Key, node.Err.Error())
		return
	}
	fmt.Fprintf(b, "%s- %s", indent, node.Type)
	if node.Name != "" {
		fmt.Fprintf(b, " %q", node.Name)
	}
	b.WriteString("\n")
	for _, child := range node.Children {
		writeTree(b, child, depth+1)
	}
}

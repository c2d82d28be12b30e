package main

import "fmt"

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	if err := deps.Service.Health(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: API at %s is unreachable: %v\n", deps.APIURL, err)
		fmt.Fprintln(deps.Stderr, "Hint: Set PDFX_API_URL or --api-url to point at a running server")
		return err
	}

	fmt.Fprintln(deps.Stdout, "ok")
	return nil
}

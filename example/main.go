// Package main demonstrates usage of the apiproblem packages.
package main

import (
	"fmt"
	"net/http"

	"github.com/teilomillet/apiproblem/problem"
	"github.com/teilomillet/apiproblem/status"
)

func main() {
	// Literal detail: the construction status is what a renderer sees.
	d := problem.New(http.StatusBadRequest, "Bad input")
	fmt.Println(d.Mapping()) // {400 Bad input}

	// Structured error object: the object's code wins over the
	// construction status, and the message is trimmed.
	cause := problem.NewError(0, "row not found")
	err := problem.WrapError(http.StatusNotFound, " customer 42 not found ", cause)

	d = problem.FromError(http.StatusBadRequest, err)
	fmt.Println(d.Status(), d.Errors()) // 404 customer 42 not found

	// Diagnostic exposure: the wire detail stays the same, but the causal
	// chain becomes available to loggers and debug tooling.
	d.SetIncludeStackTrace(true)
	for _, link := range d.Chain() {
		fmt.Printf("code=%d message=%q frames=%d\n", link.Code, link.Message, len(link.Trace))
	}
	problem.LogProblem(problem.DefaultLogger, d)

	// Default titles for renderers that want one.
	if title, ok := status.Title(d.Status()); ok {
		fmt.Println(title) // Not Found
	}
}

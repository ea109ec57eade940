// Generates AST nodes
package main

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	writeAst("Expr", []string{
		"Binary   : Left Expr, Operator Token, Right Expr",
		"Grouping : Expression Expr",
		"Literal  : Value Value",
		"Unary    : Operator Token, Right Expr",
		"Variable : Name Token",
	})

	writeAst("Stmt", []string{
		"Expression : Expr Expr",
		"Let        : Name Token, Initializer Expr",
		"Print      : Expr Expr",
	})
}

func writeAst(name string, types []string) {
	src, err := defineAst(name, types)
	if err != nil {
		panic(err)
	}

	err = os.WriteFile(filepath.Join("ast", strings.ToLower(name)+".go"), src, 0644)
	if err != nil {
		panic(err)
	}
}

func defineAst(name string, types []string) ([]byte, error) {
	var str string

	str += "// Code generated by cmd/ast.go. DO NOT EDIT.\n\n"
	str += "package ast\n"
	str += defineInterface(name)
	str += defineTypes(name, types)
	str += defineVisitor(name, types)

	// Format code with go fmt
	return format.Source([]byte(str))
}

func defineInterface(name string) string {
	return fmt.Sprintf(`
type %s interface {
	Accept(visitor %sVisitor) interface{}
	NodeID() int
}
`, name, name)
}

func defineTypes(name string, types []string) (str string) {
	for _, t := range types {
		splitType := strings.Split(t, ":")
		fullTypeName := strings.TrimSpace(splitType[0]) + name
		str += fmt.Sprintf("\ntype %s struct {\n\tID int\n", fullTypeName)

		fields := strings.Split(splitType[1], ", ")
		for _, field := range fields {
			str += fmt.Sprintf("\t%s\n", strings.TrimSpace(field))
		}

		str += "}\n"

		str += fmt.Sprintf(`
func (b %s) Accept(visitor %sVisitor) interface{} {
	return visitor.Visit%s(b)
}

func (b %s) NodeID() int {
	return b.ID
}
`, fullTypeName, name, fullTypeName, fullTypeName)
	}
	return str
}

func defineVisitor(name string, types []string) (str string) {
	param := strings.ToLower(name)
	str += fmt.Sprintf("\ntype %sVisitor interface {\n", name)
	for _, t := range types {
		splitType := strings.Split(t, ":")
		fullTypeName := strings.TrimSpace(splitType[0]) + name
		str += fmt.Sprintf("\tVisit%s(%s %s) interface{}\n", fullTypeName, param, fullTypeName)
	}
	str += "}\n"
	return str
}

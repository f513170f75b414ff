// Package parser converts raw file bytes into ParsedFile values. Language
// detection is extension-based and structure detection is a best-effort
// regex scan over lines; neither is a real parser.
package parser

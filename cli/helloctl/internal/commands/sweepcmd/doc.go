// Package sweepcmd implements the sweep command family: one-shot and
// watched sweeps of a directory tree, plus applying and validating YAML
// sweep plans.
package sweepcmd

package plan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type sweepRef struct {
	Target  string
	Keyword string
}

func ruleLabel(i int, r Rule) string {
	kw := strings.TrimSpace(r.Keyword)
	if kw != "" {
		return fmt.Sprintf("rule %d (%s)", i+1, kw)
	}
	return fmt.Sprintf("rule %d", i+1)
}

// Validate inspects a plan and returns warnings and errors describing potential issues.
func Validate(f File) (warnings []string, errors []string) {
	if len(f.Rules) == 0 {
		warnings = append(warnings, "plan declares no rules")
		return warnings, errors
	}

	dupMap := map[sweepRef][]string{}
	for i, r := range f.Rules {
		target := strings.TrimSpace(r.Target)
		keyword := strings.TrimSpace(r.Keyword)
		if target == "" {
			errors = append(errors, fmt.Sprintf("%s is missing a target", ruleLabel(i, r)))
			continue
		}
		if keyword == "" {
			errors = append(errors, fmt.Sprintf("%s is missing a keyword", ruleLabel(i, r)))
			continue
		}
		if strings.ContainsRune(keyword, '/') || strings.ContainsRune(keyword, filepath.Separator) {
			errors = append(errors, fmt.Sprintf("%s uses a keyword with a path separator; it can never match a file name", ruleLabel(i, r)))
			continue
		}
		if keyword == "." || keyword == ".." {
			errors = append(errors, fmt.Sprintf("%s uses keyword %q, which cannot name a destination folder", ruleLabel(i, r), keyword))
			continue
		}
		if !filepath.IsAbs(target) {
			warnings = append(warnings, fmt.Sprintf("%s uses relative target %s; resolution depends on the working directory", ruleLabel(i, r), target))
		}
		ref := sweepRef{Target: filepath.Clean(target), Keyword: strings.ToLower(keyword)}
		dupMap[ref] = append(dupMap[ref], ruleLabel(i, r))
	}

	for ref, labels := range dupMap {
		if len(labels) <= 1 {
			continue
		}
		sort.Strings(labels)
		warnings = append(warnings, fmt.Sprintf("multiple rules sweep %s for %q (%s)", ref.Target, ref.Keyword, strings.Join(labels, ", ")))
	}

	sort.Strings(warnings)
	sort.Strings(errors)
	return warnings, errors
}

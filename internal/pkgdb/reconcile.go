package pkgdb

// ComputeMixPlan returns the source packages whose identity is absent
// from the target, in source order. Packages the target already has are
// never touched, whatever their contents.
func ComputeMixPlan(source, target Database) []Package {
	have := identitySet(target.Packages)

	var plan []Package
	for _, p := range source.Packages {
		if _, ok := have[p.ID]; ok {
			continue
		}
		plan = append(plan, p)
	}
	return plan
}

// ComputeCleanPlan returns the target packages with at least one
// artifact path under managedRoot, in target order. Packages installed
// directly into the target stay untouched.
func ComputeCleanPlan(managedRoot string, target Database) []Package {
	var plan []Package
	for _, p := range target.Packages {
		if FromManagedRoot(managedRoot, p) {
			plan = append(plan, p)
		}
	}
	return plan
}

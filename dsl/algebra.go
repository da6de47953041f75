package dsl

// The schema algebra derives new frozen schemas from existing ones. Every
// operation leaves its inputs untouched.

// builderFrom seeds a Builder with the schema's policy, registry and limits.
func (s *Schema) builderFrom() *Builder {
	b := New(WithRegistry(s.registry), WithLimits(s.opt))
	b.unknown = s.unknown
	return b
}

// Extend returns a new schema containing all parent fields and validators
// plus those defined in the block, appended after the parent's. A duplicate
// field name panics with the duplicate_field build error.
func (s *Schema) Extend(block func(b *Builder)) *Schema {
	b := s.builderFrom()
	for _, f := range s.fields {
		b.AddField(f.clone())
	}
	b.validators = append(b.validators, s.validators...)
	if block != nil {
		block(b)
	}
	return b.MustBuild()
}

// Pick returns the subset of parent fields named in names. Cross-field
// validators are dropped: they may reference omitted fields.
func (s *Schema) Pick(names ...string) *Schema {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	b := s.builderFrom()
	for _, f := range s.fields {
		if _, ok := keep[f.name]; ok {
			b.AddField(f.clone())
		}
	}
	return b.MustBuild()
}

// Omit returns the parent's fields minus names. Validators are dropped, as
// with Pick.
func (s *Schema) Omit(names ...string) *Schema {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	b := s.builderFrom()
	for _, f := range s.fields {
		if _, ok := drop[f.name]; !ok {
			b.AddField(f.clone())
		}
	}
	return b.MustBuild()
}

// Merge combines the receiver with other. Where names collide, other's
// field wins in the receiver's position; validators concatenate with the
// receiver's first. Other's options override the receiver's.
func (s *Schema) Merge(other *Schema) *Schema {
	b := New(WithRegistry(other.registry), WithLimits(other.opt))
	b.unknown = other.unknown
	for _, f := range s.fields {
		if o, ok := other.index[f.name]; ok {
			b.AddField(o.clone())
			continue
		}
		b.AddField(f.clone())
	}
	for _, f := range other.fields {
		if _, ok := s.index[f.name]; !ok {
			b.AddField(f.clone())
		}
	}
	b.validators = append(b.validators, s.validators...)
	b.validators = append(b.validators, other.validators...)
	return b.MustBuild()
}

// Partial clones the parent with every field optional; all other field
// attributes are preserved.
func (s *Schema) Partial() *Schema {
	b := s.builderFrom()
	for _, f := range s.fields {
		cf := f.clone()
		cf.optional = true
		b.AddField(cf)
	}
	b.validators = append(b.validators, s.validators...)
	return b.MustBuild()
}

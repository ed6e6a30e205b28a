package typeschema

// Package typeschema provides:
//
// - Type descriptors for scalars, containers, unions, literals, enums,
//   annotated wrappers, and the three record shapes (data-class,
//   dictionary-shaped, validated model)
// - TypeToSchema / FuncToSchema, translating descriptors and callable
//   signatures into JSON-compatible schema trees
// - Two extension hooks via ConvertOpt: TypeHandler overrides built-in
//   dispatch, AnnotatedDocHandler overrides documentation extraction
//
// Design policy:
// - Keep the converter free of reflection; reflect_utils.go adapts native
//   Go types and functions into descriptors at the boundary.
// - Serialized output lives in jsonschema/; YAML export for documentation
//   pipelines lives in openapi/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rec := typeschema.Record("Article").
//		Field("id", typeschema.Int).
//		Field("name", typeschema.String).
//		Field("content", typeschema.Optional(typeschema.String)).
//		Build()
//	s, err := typeschema.TypeToSchema(rec)
//	b, err := jsonschema.Marshal(s)

package typeschema

// fieldSpec is the normalized view of one record field handed to the
// converter. required reflects the per-style declaration rule only; a
// none-admitting field type demotes it later during translation.
type fieldSpec struct {
	name       string
	typ        Type
	required   bool
	def        any
	hasDefault bool
}

// extractFields normalizes the three record styles into one ordered field
// list and returns the record's own documentation string alongside.
func extractFields(rec *RecordType) ([]fieldSpec, string) {
	out := make([]fieldSpec, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		var required bool
		switch rec.Style {
		case StyleDict:
			required = !f.NotRequired
		case StyleModel:
			required = !f.HasDefault && !f.NotRequired
		default:
			required = !f.HasDefault
		}
		out = append(out, fieldSpec{
			name:       f.Name,
			typ:        f.Type,
			required:   required,
			def:        f.Default,
			hasDefault: f.HasDefault,
		})
	}
	return out, rec.Doc
}

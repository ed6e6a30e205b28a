package typeschema

// RecordStyle distinguishes the three supported record declaration shapes.
// The style decides how a field's required flag is derived; see fields.go.
type RecordStyle int

const (
	// StyleDataClass marks a record whose fields are required unless they
	// carry a default value.
	StyleDataClass RecordStyle = iota
	// StyleDict marks a dictionary-shaped record whose fields are required
	// unless explicitly marked NotRequired.
	StyleDict
	// StyleModel marks a validated-model record whose fields are required
	// when they have no default and are not marked NotRequired.
	StyleModel
)

// RecordField is one declared field of a record type. HasDefault
// disambiguates an absent default from an explicit nil.
type RecordField struct {
	Name        string
	Type        Type
	Default     any
	HasDefault  bool
	NotRequired bool
}

// RecordType describes a structured record with named, ordered fields.
// Fields keep declaration order; Doc becomes the object schema description.
type RecordType struct {
	Name   string
	Doc    string
	Style  RecordStyle
	Fields []RecordField
}

func (r *RecordType) Kind() Kind { return KindRecord }

func (r *RecordType) String() string {
	if r.Name == "" {
		return "record"
	}
	return "record " + r.Name
}

// RecordBuilder assembles a dictionary-shaped record descriptor. Field
// modifiers (Default, NotRequired) apply to the most recently added field.
type RecordBuilder struct {
	rec RecordType
}

// Record starts a dictionary-shaped record with the given name.
func Record(name string) *RecordBuilder {
	return &RecordBuilder{rec: RecordType{Name: name, Style: StyleDict}}
}

// Doc sets the record's documentation string.
func (b *RecordBuilder) Doc(doc string) *RecordBuilder {
	b.rec.Doc = doc
	return b
}

// Field appends a field with the given name and type.
func (b *RecordBuilder) Field(name string, t Type) *RecordBuilder {
	b.rec.Fields = append(b.rec.Fields, RecordField{Name: name, Type: t})
	return b
}

// Default attaches a default value to the last added field.
func (b *RecordBuilder) Default(v any) *RecordBuilder {
	if n := len(b.rec.Fields); n > 0 {
		b.rec.Fields[n-1].Default = v
		b.rec.Fields[n-1].HasDefault = true
	}
	return b
}

// NotRequired marks the last added field as explicitly optional.
func (b *RecordBuilder) NotRequired() *RecordBuilder {
	if n := len(b.rec.Fields); n > 0 {
		b.rec.Fields[n-1].NotRequired = true
	}
	return b
}

// Build returns the finished record descriptor.
func (b *RecordBuilder) Build() *RecordType {
	rec := b.rec
	rec.Fields = append([]RecordField(nil), b.rec.Fields...)
	return &rec
}

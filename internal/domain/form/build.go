package form

import "strings"

// NewField maps a definition entry to a field row. index is the entry's position and is
// used as display order when none is given.
func NewField(formID uint, sectionID *uint, in FieldInput, index int) FormField {
	order := index
	if in.DisplayOrder != nil {
		order = *in.DisplayOrder
	}
	return FormField{
		FormID:              formID,
		FormSectionID:       sectionID,
		FieldName:           strings.TrimSpace(in.FieldName),
		FieldLabel:          in.FieldLabel,
		FieldType:           in.FieldType,
		DisplayOrder:        order,
		IsRequired:          in.IsRequired,
		IsActive:            true,
		Placeholder:         in.Placeholder,
		HelpText:            in.HelpText,
		ValidationRules:     in.ValidationRules,
		ConditionalLogic:    in.ConditionalLogic,
		DefaultValue:        in.DefaultValue,
		MinLength:           in.MinLength,
		MaxLength:           in.MaxLength,
		Pattern:             in.Pattern,
		StudentFieldMapping: in.StudentFieldMapping,
		AutoPopulateFrom:    in.AutoPopulateFrom,
		UploadFolderID:      in.UploadFolderID,
		Options:             NewOptions(in),
	}
}

// NewOptions builds the option rows of a field. Grid fields decompose into one row per
// grid row and grid column, tagged by OptionType.
func NewOptions(in FieldInput) []FormFieldOption {
	var opts []FormFieldOption
	for i, o := range in.Options {
		order := i
		if o.DisplayOrder != nil {
			order = *o.DisplayOrder
		}
		opts = append(opts, FormFieldOption{
			OptionValue:  o.Value,
			OptionLabel:  labelOr(o.Label, o.Value),
			DisplayOrder: order,
			IsActive:     true,
			OptionType:   OptionTypeStandard,
		})
	}
	if in.FieldType.IsGrid() && in.GridOptions != nil {
		for i, r := range in.GridOptions.Rows {
			label := labelOr(r.Label, r.Value)
			opts = append(opts, FormFieldOption{
				OptionValue:  r.Value,
				OptionLabel:  label,
				DisplayOrder: i,
				IsActive:     true,
				OptionType:   OptionTypeGridRow,
				RowLabel:     &label,
			})
		}
		for i, col := range in.GridOptions.Columns {
			label := labelOr(col.Label, col.Value)
			opts = append(opts, FormFieldOption{
				OptionValue:  col.Value,
				OptionLabel:  label,
				DisplayOrder: i,
				IsActive:     true,
				OptionType:   OptionTypeGridColumn,
				ColumnLabel:  &label,
			})
		}
	}
	return opts
}

// ApplyInput copies the definition attributes of in onto an existing field, keeping its
// identity and section.
func (f *FormField) ApplyInput(in FieldInput, index int, sectionID *uint) {
	next := NewField(f.FormID, sectionID, in, index)
	next.ID = f.ID
	next.UploadFolderID = f.UploadFolderID
	if in.UploadFolderID != nil {
		next.UploadFolderID = in.UploadFolderID
	}
	next.CreatedAt = f.CreatedAt
	*f = next
}

func labelOr(label, value string) string {
	if strings.TrimSpace(label) == "" {
		return value
	}
	return label
}

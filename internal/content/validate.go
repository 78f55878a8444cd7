package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mehulkansal/portfolio/internal/icon"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		p := sl.Current().Interface().(SocialProfile)
		if !icon.Known(p.Network) {
			sl.ReportError(p.Network, "Network", "Network", "glyph", string(p.Network))
		}
	}, SocialProfile{})
	return v
}

// Validate reports authoring mistakes in site: missing required text,
// malformed links, or a social network without a glyph. Rendering never
// depends on it.
func Validate(site Site) error {
	err := validate.Struct(site)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate content: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid content: %s", strings.Join(fields, ", "))
}

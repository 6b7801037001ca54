package render

import theme "github.com/goliatone/go-theme"

// ThemeConfig flattens a theme selection into the renderer payload. Variant
// tokens override manifest tokens, and every token is exposed as a
// `--<token>` CSS variable. A nil selection yields nil.
func ThemeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	tokens := map[string]string{}
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}

	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}
	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: vars,
	}
}

// Package render produces the HTML fragments injected at the template
// insertion markers. Templates auto-escape, so system and category names
// coming from the catalog are safe to interpolate.
package render

import (
	"html/template"
	"strings"
)

type Item struct {
	Name    string
	Checked bool
}

type Section struct {
	Title string
	Items []Item
}

// NoSystemsAssigned is the departure fallback when the position has no
// systems in the matrix.
const NoSystemsAssigned = `<p class="col-span-3 italic text-gray-600">No systems assigned for this position.</p>`

var requestSectionTmpl = template.Must(template.New("requestSection").Parse(`
<div>
  <h4 class="bg-blue-900 text-white font-bold p-2 rounded" style="font-size: var(--text-section-header);">{{.Title}}</h4>
  <div class="grid grid-cols-2 gap-1 p-2" style="font-size: var(--text-checkbox);">
    {{range .Items}}<label class="flex items-center gap-2">
    <input type="checkbox" {{if .Checked}}checked {{end}}style="height: var(--checkbox-size); width: var(--checkbox-size);" />
    <span>{{.Name}}</span>
</label>{{end}}
  </div>
</div>`))

var checklistRowTmpl = template.Must(template.New("checklistRow").Parse(`
<tr>
    <td class="px-4 py-6 whitespace-nowrap font-medium text-gray-900" style="font-size: var(--text-form-label);">
        {{.Name}}
    </td>
    <td class="px-4 py-6 whitespace-nowrap border-l-2 border-gray-400">
        <label class="flex items-center justify-center">
            <input type="checkbox" {{if .Checked}}checked {{end}}style="height: var(--checkbox-size); width: var(--checkbox-size);" class="text-blue-600 border-gray-400 rounded">
        </label>
    </td>
    <td class="px-2 py-6 border-l-2 border-gray-400">
    </td>
</tr>`))

var departureSectionTmpl = template.Must(template.New("departureSection").Parse(`
<div class="space-y-2">
  <h4 class="font-bold text-gray-900" style="font-size: var(--text-section-header);">{{.Title}}</h4>
  <div class="space-y-1" style="font-size: var(--text-checkbox);">
    {{range .Items}}<label class="flex items-center gap-2">
        <input type="checkbox" checked style="height: var(--checkbox-size); width: var(--checkbox-size);" />
        <span>{{.Name}}</span>
    </label>
    {{end}}
  </div>
</div>`))

// RequestSections renders the per-category checkbox blocks for the access
// request form, in the order given.
func RequestSections(sections []Section) (string, error) {
	var sb strings.Builder
	for _, s := range sections {
		if err := requestSectionTmpl.Execute(&sb, s); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// ChecklistRows renders one table row per system for the IT checklist.
func ChecklistRows(items []Item) (string, error) {
	var sb strings.Builder
	for _, it := range items {
		if err := checklistRowTmpl.Execute(&sb, it); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// DepartureSections renders the assigned-systems blocks for the separation
// checklist. Every checkbox is pre-checked: the form lists access to remove.
// Returns the fallback paragraph when no sections are given.
func DepartureSections(sections []Section) (string, error) {
	if len(sections) == 0 {
		return NoSystemsAssigned, nil
	}
	var sb strings.Builder
	for _, s := range sections {
		if err := departureSectionTmpl.Execute(&sb, s); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

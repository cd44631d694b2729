package htmlward

import "regexp"

var reDigits = regexp.MustCompile(`^[0-9]+$`)

// DefaultPolicy returns a Policy allowing a common safe subset of HTML
// used in long-form content — headings, paragraphs, formatting, lists,
// links, images, tables, code, blockquotes — while admitting no script
// elements and no event-handler attributes. href and src use the "*"
// wildcard matcher, so their scheme (javascript: included) is not
// checked; callers wanting scheme restrictions should narrow
// [AttrRule.Value] with a Matcher built from the urlmatch package.
func DefaultPolicy() *Policy {
	global := map[string]AttrRule{
		"id":    {Mode: ModeSimple, Value: AnyValue},
		"class": {Mode: ModeSet, Delimiter: " ", SetValues: AnyValue},
		"lang":  {Mode: ModeSimple, Value: AnyValue},
		"dir":   {Mode: ModeSimple, Value: OneOfValues("ltr", "rtl", "auto")},
	}

	tags := map[string]TagRule{}
	for _, t := range []string{
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"b", "i", "em", "strong", "u", "s", "strike", "del", "ins",
		"ul", "ol", "li",
		"thead", "tbody", "tfoot", "tr",
		"code", "pre", "kbd", "samp",
		"cite",
		"figure", "figcaption",
		"div", "span", "section", "article", "header", "footer",
		"details", "summary",
		"abbr", "acronym", "address",
		"sup", "sub",
	} {
		tags[t] = TagRule{Attributes: global}
	}

	tags["a"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"href":   {Mode: ModeSimple, Value: AnyValue},
		"title":  {Mode: ModeSimple, Value: AnyValue},
		"target": {Mode: ModeSimple, Value: OneOfValues("_blank", "_self", "_parent", "_top")},
		"rel":    {Mode: ModeSet, Delimiter: " ", SetValues: AnyValue},
	})}
	tags["img"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"src":     {Mode: ModeSimple, Value: AnyValue, Required: true},
		"alt":     {Mode: ModeSimple, Value: AnyValue},
		"title":   {Mode: ModeSimple, Value: AnyValue},
		"width":   {Mode: ModeSimple, Value: MatchRegex(reDigits)},
		"height":  {Mode: ModeSimple, Value: MatchRegex(reDigits)},
		"loading": {Mode: ModeSimple, Value: OneOfValues("lazy", "eager")},
	})}
	tags["table"] = TagRule{Attributes: global}
	tags["td"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"colspan": {Mode: ModeSimple, Value: MatchRegex(reDigits)},
		"rowspan": {Mode: ModeSimple, Value: MatchRegex(reDigits)},
		"align":   {Mode: ModeSimple, Value: OneOfValues("left", "right", "center", "justify")},
		"valign":  {Mode: ModeSimple, Value: OneOfValues("top", "middle", "bottom")},
	})}
	tags["th"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"colspan": {Mode: ModeSimple, Value: MatchRegex(reDigits)},
		"rowspan": {Mode: ModeSimple, Value: MatchRegex(reDigits)},
		"align":   {Mode: ModeSimple, Value: OneOfValues("left", "right", "center", "justify")},
		"valign":  {Mode: ModeSimple, Value: OneOfValues("top", "middle", "bottom")},
		"scope":   {Mode: ModeSimple, Value: OneOfValues("row", "col", "rowgroup", "colgroup")},
	})}
	tags["blockquote"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"cite": {Mode: ModeSimple, Value: AnyValue},
	})}
	tags["q"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"cite": {Mode: ModeSimple, Value: AnyValue},
	})}
	tags["abbr"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"title": {Mode: ModeSimple, Value: AnyValue},
	})}
	tags["acronym"] = TagRule{Attributes: merge(global, map[string]AttrRule{
		"title": {Mode: ModeSimple, Value: AnyValue},
	})}

	return &Policy{
		Tags: tags,
		ErrorHandling: ErrorHandling{
			Tag:       StrategyUnwrapElement,
			Attribute: StrategyDiscardAttribute,
		},
	}
}

// StrictPolicy returns a Policy allowing only basic formatting,
// paragraph, line-break and list tags with no attributes at all — suitable for comment
// sections and other user-generated content where markup should be
// minimal.
func StrictPolicy() *Policy {
	tags := map[string]TagRule{}
	for _, t := range []string{"b", "i", "em", "strong", "br", "p", "ul", "ol", "li"} {
		tags[t] = TagRule{}
	}
	return &Policy{
		Tags: tags,
		ErrorHandling: ErrorHandling{
			Tag:       StrategyDiscardElement,
			Attribute: StrategyDiscardAttribute,
		},
	}
}

func merge(base, extra map[string]AttrRule) map[string]AttrRule {
	out := make(map[string]AttrRule, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

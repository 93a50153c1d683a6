package ariamis

import "github.com/Deskbot/Ariamis/pkg/dom"

// Tag-bound constructors: one thin wrapper per known tag, each a partial
// application of Elem with the tag fixed.

// Document structure elements

func Html(args ...any) *dom.Element  { return Elem("html", args...) }
func Head(args ...any) *dom.Element  { return Elem("head", args...) }
func Body(args ...any) *dom.Element  { return Elem("body", args...) }
func Title(args ...any) *dom.Element { return Elem("title", args...) }
func Meta(args ...any) *dom.Element  { return Elem("meta", args...) }
func Link(args ...any) *dom.Element  { return Elem("link", args...) }
func Base(args ...any) *dom.Element  { return Elem("base", args...) }

// Content sectioning elements

func Header(args ...any) *dom.Element  { return Elem("header", args...) }
func Footer(args ...any) *dom.Element  { return Elem("footer", args...) }
func Main(args ...any) *dom.Element    { return Elem("main", args...) }
func Nav(args ...any) *dom.Element     { return Elem("nav", args...) }
func Section(args ...any) *dom.Element { return Elem("section", args...) }
func Article(args ...any) *dom.Element { return Elem("article", args...) }
func Aside(args ...any) *dom.Element   { return Elem("aside", args...) }
func Address(args ...any) *dom.Element { return Elem("address", args...) }
func H1(args ...any) *dom.Element      { return Elem("h1", args...) }
func H2(args ...any) *dom.Element      { return Elem("h2", args...) }
func H3(args ...any) *dom.Element      { return Elem("h3", args...) }
func H4(args ...any) *dom.Element      { return Elem("h4", args...) }
func H5(args ...any) *dom.Element      { return Elem("h5", args...) }
func H6(args ...any) *dom.Element      { return Elem("h6", args...) }
func Hgroup(args ...any) *dom.Element  { return Elem("hgroup", args...) }

// Text content elements

func Div(args ...any) *dom.Element        { return Elem("div", args...) }
func P(args ...any) *dom.Element          { return Elem("p", args...) }
func Span(args ...any) *dom.Element       { return Elem("span", args...) }
func Pre(args ...any) *dom.Element        { return Elem("pre", args...) }
func Blockquote(args ...any) *dom.Element { return Elem("blockquote", args...) }
func Ul(args ...any) *dom.Element         { return Elem("ul", args...) }
func Ol(args ...any) *dom.Element         { return Elem("ol", args...) }
func Li(args ...any) *dom.Element         { return Elem("li", args...) }
func Dl(args ...any) *dom.Element         { return Elem("dl", args...) }
func Dt(args ...any) *dom.Element         { return Elem("dt", args...) }
func Dd(args ...any) *dom.Element         { return Elem("dd", args...) }
func Hr(args ...any) *dom.Element         { return Elem("hr", args...) }
func Figure(args ...any) *dom.Element     { return Elem("figure", args...) }
func Figcaption(args ...any) *dom.Element { return Elem("figcaption", args...) }

// Inline text semantics

func A(args ...any) *dom.Element      { return Elem("a", args...) }
func Strong(args ...any) *dom.Element { return Elem("strong", args...) }
func Em(args ...any) *dom.Element     { return Elem("em", args...) }
func B(args ...any) *dom.Element      { return Elem("b", args...) }
func I(args ...any) *dom.Element      { return Elem("i", args...) }
func U(args ...any) *dom.Element      { return Elem("u", args...) }
func S(args ...any) *dom.Element      { return Elem("s", args...) }
func Small(args ...any) *dom.Element  { return Elem("small", args...) }
func Mark(args ...any) *dom.Element   { return Elem("mark", args...) }
func Sub(args ...any) *dom.Element    { return Elem("sub", args...) }
func Sup(args ...any) *dom.Element    { return Elem("sup", args...) }
func Code(args ...any) *dom.Element   { return Elem("code", args...) }
func Kbd(args ...any) *dom.Element    { return Elem("kbd", args...) }
func Samp(args ...any) *dom.Element   { return Elem("samp", args...) }
func Var(args ...any) *dom.Element    { return Elem("var", args...) }
func Abbr(args ...any) *dom.Element   { return Elem("abbr", args...) }
func Time_(args ...any) *dom.Element  { return Elem("time", args...) }
func Cite(args ...any) *dom.Element   { return Elem("cite", args...) }
func Q(args ...any) *dom.Element      { return Elem("q", args...) }
func Dfn(args ...any) *dom.Element    { return Elem("dfn", args...) }
func Ruby(args ...any) *dom.Element   { return Elem("ruby", args...) }
func Rt(args ...any) *dom.Element     { return Elem("rt", args...) }
func Rp(args ...any) *dom.Element     { return Elem("rp", args...) }
func Bdi(args ...any) *dom.Element    { return Elem("bdi", args...) }
func Bdo(args ...any) *dom.Element    { return Elem("bdo", args...) }

// DataElement creates a <data> HTML element.
func DataElement(args ...any) *dom.Element { return Elem("data", args...) }
func Br(args ...any) *dom.Element          { return Elem("br", args...) }
func Wbr(args ...any) *dom.Element         { return Elem("wbr", args...) }

// Form elements

func Form(args ...any) *dom.Element     { return Elem("form", args...) }
func Input(args ...any) *dom.Element    { return Elem("input", args...) }
func Textarea(args ...any) *dom.Element { return Elem("textarea", args...) }
func Select(args ...any) *dom.Element   { return Elem("select", args...) }
func Option(args ...any) *dom.Element   { return Elem("option", args...) }
func Optgroup(args ...any) *dom.Element { return Elem("optgroup", args...) }
func Button(args ...any) *dom.Element   { return Elem("button", args...) }
func Label(args ...any) *dom.Element    { return Elem("label", args...) }
func Fieldset(args ...any) *dom.Element { return Elem("fieldset", args...) }
func Legend(args ...any) *dom.Element   { return Elem("legend", args...) }
func Datalist(args ...any) *dom.Element { return Elem("datalist", args...) }
func Output(args ...any) *dom.Element   { return Elem("output", args...) }
func Progress(args ...any) *dom.Element { return Elem("progress", args...) }
func Meter(args ...any) *dom.Element    { return Elem("meter", args...) }

// Table elements

func Table(args ...any) *dom.Element    { return Elem("table", args...) }
func Thead(args ...any) *dom.Element    { return Elem("thead", args...) }
func Tbody(args ...any) *dom.Element    { return Elem("tbody", args...) }
func Tfoot(args ...any) *dom.Element    { return Elem("tfoot", args...) }
func Tr(args ...any) *dom.Element       { return Elem("tr", args...) }
func Th(args ...any) *dom.Element       { return Elem("th", args...) }
func Td(args ...any) *dom.Element       { return Elem("td", args...) }
func Caption(args ...any) *dom.Element  { return Elem("caption", args...) }
func Colgroup(args ...any) *dom.Element { return Elem("colgroup", args...) }
func Col(args ...any) *dom.Element      { return Elem("col", args...) }

// Media elements

func Img(args ...any) *dom.Element     { return Elem("img", args...) }
func Picture(args ...any) *dom.Element { return Elem("picture", args...) }
func Source(args ...any) *dom.Element  { return Elem("source", args...) }
func Video(args ...any) *dom.Element   { return Elem("video", args...) }
func Audio(args ...any) *dom.Element   { return Elem("audio", args...) }
func Track(args ...any) *dom.Element   { return Elem("track", args...) }
func Iframe(args ...any) *dom.Element  { return Elem("iframe", args...) }
func Embed(args ...any) *dom.Element   { return Elem("embed", args...) }
func Object(args ...any) *dom.Element  { return Elem("object", args...) }
func Param(args ...any) *dom.Element   { return Elem("param", args...) }
func Canvas(args ...any) *dom.Element  { return Elem("canvas", args...) }
func Svg(args ...any) *dom.Element     { return Elem("svg", args...) }
func Math(args ...any) *dom.Element    { return Elem("math", args...) }
func Map_(args ...any) *dom.Element    { return Elem("map", args...) }
func Area(args ...any) *dom.Element    { return Elem("area", args...) }

// Interactive elements

func Details(args ...any) *dom.Element { return Elem("details", args...) }
func Summary(args ...any) *dom.Element { return Elem("summary", args...) }
func Dialog(args ...any) *dom.Element  { return Elem("dialog", args...) }
func Menu(args ...any) *dom.Element    { return Elem("menu", args...) }

// Scripting elements

func Script(args ...any) *dom.Element   { return Elem("script", args...) }
func Noscript(args ...any) *dom.Element { return Elem("noscript", args...) }
func Template(args ...any) *dom.Element { return Elem("template", args...) }
func Slot(args ...any) *dom.Element     { return Elem("slot", args...) }
func Style(args ...any) *dom.Element    { return Elem("style", args...) }

// CustomElem creates an element with a tag name outside the bound set,
// such as a custom element.
func CustomElem(tag string, args ...any) *dom.Element {
	return Elem(tag, args...)
}

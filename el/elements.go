// This file re-exports the tag-bound element constructors for the el package.
package el

import (
	ariamis "github.com/Deskbot/Ariamis"
	"github.com/Deskbot/Ariamis/pkg/dom"
)

func Html(args ...any) *dom.Element {
	return ariamis.Html(args...)
}
func Head(args ...any) *dom.Element {
	return ariamis.Head(args...)
}
func Body(args ...any) *dom.Element {
	return ariamis.Body(args...)
}
func Title(args ...any) *dom.Element {
	return ariamis.Title(args...)
}
func Meta(args ...any) *dom.Element {
	return ariamis.Meta(args...)
}
func LinkEl(args ...any) *dom.Element {
	return ariamis.Link(args...)
}
func Base(args ...any) *dom.Element {
	return ariamis.Base(args...)
}
func Header(args ...any) *dom.Element {
	return ariamis.Header(args...)
}
func Footer(args ...any) *dom.Element {
	return ariamis.Footer(args...)
}
func Main(args ...any) *dom.Element {
	return ariamis.Main(args...)
}
func Nav(args ...any) *dom.Element {
	return ariamis.Nav(args...)
}
func Section(args ...any) *dom.Element {
	return ariamis.Section(args...)
}
func Article(args ...any) *dom.Element {
	return ariamis.Article(args...)
}
func Aside(args ...any) *dom.Element {
	return ariamis.Aside(args...)
}
func Address(args ...any) *dom.Element {
	return ariamis.Address(args...)
}
func H1(args ...any) *dom.Element {
	return ariamis.H1(args...)
}
func H2(args ...any) *dom.Element {
	return ariamis.H2(args...)
}
func H3(args ...any) *dom.Element {
	return ariamis.H3(args...)
}
func H4(args ...any) *dom.Element {
	return ariamis.H4(args...)
}
func H5(args ...any) *dom.Element {
	return ariamis.H5(args...)
}
func H6(args ...any) *dom.Element {
	return ariamis.H6(args...)
}
func Hgroup(args ...any) *dom.Element {
	return ariamis.Hgroup(args...)
}
func Div(args ...any) *dom.Element {
	return ariamis.Div(args...)
}
func P(args ...any) *dom.Element {
	return ariamis.P(args...)
}
func Span(args ...any) *dom.Element {
	return ariamis.Span(args...)
}
func Pre(args ...any) *dom.Element {
	return ariamis.Pre(args...)
}
func Blockquote(args ...any) *dom.Element {
	return ariamis.Blockquote(args...)
}
func Ul(args ...any) *dom.Element {
	return ariamis.Ul(args...)
}
func Ol(args ...any) *dom.Element {
	return ariamis.Ol(args...)
}
func Li(args ...any) *dom.Element {
	return ariamis.Li(args...)
}
func Dl(args ...any) *dom.Element {
	return ariamis.Dl(args...)
}
func Dt(args ...any) *dom.Element {
	return ariamis.Dt(args...)
}
func Dd(args ...any) *dom.Element {
	return ariamis.Dd(args...)
}
func Hr(args ...any) *dom.Element {
	return ariamis.Hr(args...)
}
func Figure(args ...any) *dom.Element {
	return ariamis.Figure(args...)
}
func Figcaption(args ...any) *dom.Element {
	return ariamis.Figcaption(args...)
}
func A(args ...any) *dom.Element {
	return ariamis.A(args...)
}
func Strong(args ...any) *dom.Element {
	return ariamis.Strong(args...)
}
func Em(args ...any) *dom.Element {
	return ariamis.Em(args...)
}
func B(args ...any) *dom.Element {
	return ariamis.B(args...)
}
func I(args ...any) *dom.Element {
	return ariamis.I(args...)
}
func U(args ...any) *dom.Element {
	return ariamis.U(args...)
}
func S(args ...any) *dom.Element {
	return ariamis.S(args...)
}
func Small(args ...any) *dom.Element {
	return ariamis.Small(args...)
}
func Mark(args ...any) *dom.Element {
	return ariamis.Mark(args...)
}
func Sub(args ...any) *dom.Element {
	return ariamis.Sub(args...)
}
func Sup(args ...any) *dom.Element {
	return ariamis.Sup(args...)
}
func Code(args ...any) *dom.Element {
	return ariamis.Code(args...)
}
func Kbd(args ...any) *dom.Element {
	return ariamis.Kbd(args...)
}
func Samp(args ...any) *dom.Element {
	return ariamis.Samp(args...)
}
func Var(args ...any) *dom.Element {
	return ariamis.Var(args...)
}
func Abbr(args ...any) *dom.Element {
	return ariamis.Abbr(args...)
}
func Time_(args ...any) *dom.Element {
	return ariamis.Time_(args...)
}
func Cite(args ...any) *dom.Element {
	return ariamis.Cite(args...)
}
func Q(args ...any) *dom.Element {
	return ariamis.Q(args...)
}
func Dfn(args ...any) *dom.Element {
	return ariamis.Dfn(args...)
}
func Ruby(args ...any) *dom.Element {
	return ariamis.Ruby(args...)
}
func Rt(args ...any) *dom.Element {
	return ariamis.Rt(args...)
}
func Rp(args ...any) *dom.Element {
	return ariamis.Rp(args...)
}
func Bdi(args ...any) *dom.Element {
	return ariamis.Bdi(args...)
}
func Bdo(args ...any) *dom.Element {
	return ariamis.Bdo(args...)
}
func DataElement(args ...any) *dom.Element {
	return ariamis.DataElement(args...)
}
func Br(args ...any) *dom.Element {
	return ariamis.Br(args...)
}
func Wbr(args ...any) *dom.Element {
	return ariamis.Wbr(args...)
}
func Form(args ...any) *dom.Element {
	return ariamis.Form(args...)
}
func Input(args ...any) *dom.Element {
	return ariamis.Input(args...)
}
func Textarea(args ...any) *dom.Element {
	return ariamis.Textarea(args...)
}
func Select(args ...any) *dom.Element {
	return ariamis.Select(args...)
}
func Option(args ...any) *dom.Element {
	return ariamis.Option(args...)
}
func Optgroup(args ...any) *dom.Element {
	return ariamis.Optgroup(args...)
}
func Button(args ...any) *dom.Element {
	return ariamis.Button(args...)
}
func Label(args ...any) *dom.Element {
	return ariamis.Label(args...)
}
func Fieldset(args ...any) *dom.Element {
	return ariamis.Fieldset(args...)
}
func Legend(args ...any) *dom.Element {
	return ariamis.Legend(args...)
}
func Datalist(args ...any) *dom.Element {
	return ariamis.Datalist(args...)
}
func Output(args ...any) *dom.Element {
	return ariamis.Output(args...)
}
func Progress(args ...any) *dom.Element {
	return ariamis.Progress(args...)
}
func Meter(args ...any) *dom.Element {
	return ariamis.Meter(args...)
}
func Table(args ...any) *dom.Element {
	return ariamis.Table(args...)
}
func Thead(args ...any) *dom.Element {
	return ariamis.Thead(args...)
}
func Tbody(args ...any) *dom.Element {
	return ariamis.Tbody(args...)
}
func Tfoot(args ...any) *dom.Element {
	return ariamis.Tfoot(args...)
}
func Tr(args ...any) *dom.Element {
	return ariamis.Tr(args...)
}
func Th(args ...any) *dom.Element {
	return ariamis.Th(args...)
}
func Td(args ...any) *dom.Element {
	return ariamis.Td(args...)
}
func Caption(args ...any) *dom.Element {
	return ariamis.Caption(args...)
}
func Colgroup(args ...any) *dom.Element {
	return ariamis.Colgroup(args...)
}
func Col(args ...any) *dom.Element {
	return ariamis.Col(args...)
}
func Img(args ...any) *dom.Element {
	return ariamis.Img(args...)
}
func Picture(args ...any) *dom.Element {
	return ariamis.Picture(args...)
}
func Source(args ...any) *dom.Element {
	return ariamis.Source(args...)
}
func Video(args ...any) *dom.Element {
	return ariamis.Video(args...)
}
func Audio(args ...any) *dom.Element {
	return ariamis.Audio(args...)
}
func Track(args ...any) *dom.Element {
	return ariamis.Track(args...)
}
func Iframe(args ...any) *dom.Element {
	return ariamis.Iframe(args...)
}
func Embed(args ...any) *dom.Element {
	return ariamis.Embed(args...)
}
func Object(args ...any) *dom.Element {
	return ariamis.Object(args...)
}
func Param(args ...any) *dom.Element {
	return ariamis.Param(args...)
}
func Canvas(args ...any) *dom.Element {
	return ariamis.Canvas(args...)
}
func Svg(args ...any) *dom.Element {
	return ariamis.Svg(args...)
}
func Math(args ...any) *dom.Element {
	return ariamis.Math(args...)
}
func Map_(args ...any) *dom.Element {
	return ariamis.Map_(args...)
}
func Area(args ...any) *dom.Element {
	return ariamis.Area(args...)
}
func Details(args ...any) *dom.Element {
	return ariamis.Details(args...)
}
func Summary(args ...any) *dom.Element {
	return ariamis.Summary(args...)
}
func Dialog(args ...any) *dom.Element {
	return ariamis.Dialog(args...)
}
func Menu(args ...any) *dom.Element {
	return ariamis.Menu(args...)
}
func Script(args ...any) *dom.Element {
	return ariamis.Script(args...)
}
func Noscript(args ...any) *dom.Element {
	return ariamis.Noscript(args...)
}
func Template(args ...any) *dom.Element {
	return ariamis.Template(args...)
}
func Slot(args ...any) *dom.Element {
	return ariamis.Slot(args...)
}
func Style(args ...any) *dom.Element {
	return ariamis.Style(args...)
}
func CustomElem(tag string, args ...any) *dom.Element {
	return ariamis.CustomElem(tag, args...)
}

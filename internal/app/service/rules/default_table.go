package rules

import (
	"github.com/rulemd/rulemd/internal/app/service"
)

// Canonical dispatch order (spec.md §4.4): ascending integer orders, with
// em and strong deliberately sharing one order so their Quality functions
// (+0.2 vs +0.1) are what decides between them on an overlapping capture.
const (
	orderHeading = iota + 1
	orderNpTable
	orderLHeading
	orderHR
	orderCodeBlock
	orderFence
	orderBlockQuote
	orderList
	orderDef
	orderTable
	orderNewline
	orderParagraph
	orderEscape
	orderTableSeparator
	orderAutolink
	orderMailTo
	orderURL
	orderLink
	orderImage
	orderRefLink
	orderRefImage
	orderEmStrong
	orderU
	orderDel
	orderInlineCode
	orderBr
	orderText
)

// BuildDefaultRules assembles the full rule table realizing standard
// Markdown plus the GFM extensions (tables, strikethrough, fenced code,
// underline, reference links/images) spec.md §4.4 names, registered in
// its canonical dispatch order.
func BuildDefaultRules() *service.RuleTable {
	table := service.NewRuleTable()

	table.MustRegister(NewArrayRule())
	table.MustRegister(NewHeadingRule(orderHeading))
	table.MustRegister(NewNpTableRule(orderNpTable))
	table.MustRegister(NewLHeadingRule(orderLHeading))
	table.MustRegister(NewHRRule(orderHR))
	table.MustRegister(NewCodeBlockRule(orderCodeBlock))
	table.MustRegister(NewFenceRule(orderFence))
	table.MustRegister(NewBlockQuoteRule(orderBlockQuote))
	table.MustRegister(NewListRule(orderList))
	table.MustRegister(NewDefRule(orderDef))
	table.MustRegister(NewTableRule(orderTable))
	table.MustRegister(NewNewlineRule(orderNewline))
	table.MustRegister(NewParagraphRule(orderParagraph))
	table.MustRegister(NewEscapeRule(orderEscape))
	table.MustRegister(NewTableSeparatorRule(orderTableSeparator))
	table.MustRegister(NewAutolinkRule(orderAutolink))
	table.MustRegister(NewMailToRule(orderMailTo))
	table.MustRegister(NewURLRule(orderURL))
	table.MustRegister(NewLinkRule(orderLink))
	table.MustRegister(NewImageRule(orderImage))
	table.MustRegister(NewRefLinkRule(orderRefLink))
	table.MustRegister(NewRefImageRule(orderRefImage))
	table.MustRegister(NewEmRule(orderEmStrong))
	table.MustRegister(NewStrongRule(orderEmStrong))
	table.MustRegister(NewURule(orderU))
	table.MustRegister(NewDelRule(orderDel))
	table.MustRegister(NewInlineCodeRule(orderInlineCode))
	table.MustRegister(NewBrRule(orderBr))
	table.MustRegister(NewTextRule(orderText))

	return table
}

package xcal

import "github.com/beevik/etree"

// ICalendar is the xCal namespace of RFC 6321
const ICalendar = "urn:ietf:params:xml:ns:icalendar-2.0"

// Element names used by the encoder
const (
	TagICalendar  = "icalendar"
	TagProperties = "properties"
	TagComponents = "components"
	TagText       = "text"
	TagDate       = "date"
	TagDateTime   = "date-time"
	TagRecur      = "recur"
)

// AddNamespaces declares the xCal namespace as the default one on the root element
func AddNamespaces(doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}
	root.CreateAttr("xmlns", ICalendar)
}

package events

import "github.com/atomicstack/item-directory/internal/logging"

type BrowserTracer struct{}

type BlogTracer struct{}

type DropdownTracer struct{}

var (
	Browser  = BrowserTracer{}
	Blog     = BlogTracer{}
	Dropdown = DropdownTracer{}
)

func (BrowserTracer) Search(term string, visible int) {
	logging.Trace("browser.search", map[string]interface{}{"term": term, "visible": visible})
}

func (BrowserTracer) Category(category string, visible int) {
	logging.Trace("browser.category", map[string]interface{}{"category": category, "visible": visible})
}

func (BrowserTracer) Select(id string, fellBack bool) {
	logging.Trace("browser.select", map[string]interface{}{"id": id, "fallback": fellBack})
}

func (BlogTracer) MarkRead(postID string) {
	logging.Trace("blog.read", map[string]interface{}{"post": postID})
}

func (BlogTracer) MarkUnread(postID string) {
	logging.Trace("blog.unread", map[string]interface{}{"post": postID})
}

func (BlogTracer) MarkerExpired(postID string) {
	logging.Trace("blog.marker.expired", map[string]interface{}{"post": postID})
}

func (DropdownTracer) Toggle(open bool, options int) {
	logging.Trace("dropdown.toggle", map[string]interface{}{"open": open, "options": options})
}

func (DropdownTracer) Choose(label string, link string) {
	logging.Trace("dropdown.choose", map[string]interface{}{"label": label, "link": link})
}

func (DropdownTracer) Dismiss(reason string) {
	logging.Trace("dropdown.dismiss", map[string]interface{}{"reason": reason})
}

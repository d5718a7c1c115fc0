package protocol

// CommandKind names one daemon operation. The set is closed: the daemon
// routes on these strings and the client selects payload shapes from them.
type CommandKind string

const (
	// Navigation
	KindNavigate CommandKind = "navigate"
	KindOpen     CommandKind = "open"
	KindBack     CommandKind = "back"
	KindForward  CommandKind = "forward"
	KindReload   CommandKind = "reload"
	KindClose    CommandKind = "close"

	// Snapshot
	KindSnapshot CommandKind = "snapshot"

	// Element interactions
	KindClick    CommandKind = "click"
	KindDblclick CommandKind = "dblclick"
	KindFill     CommandKind = "fill"
	KindType     CommandKind = "type"
	KindPress    CommandKind = "press"
	KindHover    CommandKind = "hover"
	KindFocus    CommandKind = "focus"
	KindCheck    CommandKind = "check"
	KindUncheck  CommandKind = "uncheck"
	KindSelect   CommandKind = "select"

	// Scrolling
	KindScroll         CommandKind = "scroll"
	KindScrollIntoView CommandKind = "scrollintoview"

	// Element queries
	KindGet  CommandKind = "get"
	KindIs   CommandKind = "is"
	KindFind CommandKind = "find"

	// Advanced interactions
	KindDrag   CommandKind = "drag"
	KindUpload CommandKind = "upload"
	KindMouse  CommandKind = "mouse"
	KindWait   CommandKind = "wait"

	// Tab management
	KindTab       CommandKind = "tab"
	KindTabNew    CommandKind = "tab_new"
	KindTabClose  CommandKind = "tab_close"
	KindTabSwitch CommandKind = "tab_switch"
	KindTabList   CommandKind = "tab_list"

	// Capture
	KindScreenshot CommandKind = "screenshot"
	KindPDF        CommandKind = "pdf"

	// Script execution
	KindEval CommandKind = "eval"

	// Reserved: liveness is normally probed at the envelope level, but the
	// daemon also routes a ping command kind.
	KindPing CommandKind = "ping"
)

var knownKinds = map[CommandKind]struct{}{
	KindNavigate: {}, KindOpen: {}, KindBack: {}, KindForward: {},
	KindReload: {}, KindClose: {}, KindSnapshot: {}, KindClick: {},
	KindDblclick: {}, KindFill: {}, KindType: {}, KindPress: {},
	KindHover: {}, KindFocus: {}, KindCheck: {}, KindUncheck: {},
	KindSelect: {}, KindScroll: {}, KindScrollIntoView: {}, KindGet: {},
	KindIs: {}, KindFind: {}, KindDrag: {}, KindUpload: {}, KindMouse: {},
	KindWait: {}, KindTab: {}, KindTabNew: {}, KindTabClose: {},
	KindTabSwitch: {}, KindTabList: {}, KindScreenshot: {}, KindPDF: {},
	KindEval: {}, KindPing: {},
}

// Valid reports whether k is a member of the closed command set.
func (k CommandKind) Valid() bool {
	_, ok := knownKinds[k]
	return ok
}

// Kinds returns every known command kind, for exhaustive tests.
func Kinds() []CommandKind {
	kinds := make([]CommandKind, 0, len(knownKinds))
	for k := range knownKinds {
		kinds = append(kinds, k)
	}
	return kinds
}

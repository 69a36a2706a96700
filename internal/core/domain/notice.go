package domain

// NoticeKind is the severity of a Notice.
type NoticeKind uint8

const (
	// NoticeInfo is an informational notice.
	NoticeInfo NoticeKind = iota
	// NoticeError reports a failure.
	NoticeError
)

// Notice is a modal message shown to the user.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// InfoNotice builds an informational notice.
func InfoNotice(title, message string) Notice {
	return Notice{Kind: NoticeInfo, Title: title, Message: message}
}

// ErrorNotice builds an error notice.
func ErrorNotice(title, message string) Notice {
	return Notice{Kind: NoticeError, Title: title, Message: message}
}

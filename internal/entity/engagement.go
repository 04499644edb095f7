package entity

// EngagementType enumera os tipos de evento de engajamento que o
// pipeline de tracking entrega (pixel de abertura, clique em link,
// abertura do currículo anexado, resposta).
type EngagementType string

const (
	EngagementOpen       EngagementType = "open"
	EngagementClick      EngagementType = "click"
	EngagementResumeOpen EngagementType = "resume_open"
	EngagementReply      EngagementType = "reply"
)

func (t EngagementType) Valid() bool {
	switch t {
	case EngagementOpen, EngagementClick, EngagementResumeOpen, EngagementReply:
		return true
	}
	return false
}

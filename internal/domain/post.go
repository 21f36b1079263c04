package domain

import (
	"strings"
	"time"
)

type PostID string

type MetadataKind string

const (
	MetadataKindTextOnly    MetadataKind = "TextOnlyMetadata"
	MetadataKindArticle     MetadataKind = "ArticleMetadata"
	MetadataKindImage       MetadataKind = "ImageMetadata"
	MetadataKindVideo       MetadataKind = "VideoMetadata"
	MetadataKindAudio       MetadataKind = "AudioMetadata"
	MetadataKindLink        MetadataKind = "LinkMetadata"
	MetadataKindEmbed       MetadataKind = "EmbedMetadata"
	MetadataKindStory       MetadataKind = "StoryMetadata"
	MetadataKindEvent       MetadataKind = "EventMetadata"
	MetadataKindLivestream  MetadataKind = "LivestreamMetadata"
	MetadataKindCheckingIn  MetadataKind = "CheckingInMetadata"
	MetadataKindMint        MetadataKind = "MintMetadata"
	MetadataKindSpace       MetadataKind = "SpaceMetadata"
	MetadataKindThreeD      MetadataKind = "ThreeDMetadata"
	MetadataKindTransaction MetadataKind = "TransactionMetadata"
	MetadataKindUnknown     MetadataKind = "UnknownPostMetadata"
)

var textBearingKinds = map[MetadataKind]struct{}{
	MetadataKindTextOnly:    {},
	MetadataKindArticle:     {},
	MetadataKindImage:       {},
	MetadataKindVideo:       {},
	MetadataKindAudio:       {},
	MetadataKindLink:        {},
	MetadataKindEmbed:       {},
	MetadataKindStory:       {},
	MetadataKindEvent:       {},
	MetadataKindLivestream:  {},
	MetadataKindCheckingIn:  {},
	MetadataKindMint:        {},
	MetadataKindSpace:       {},
	MetadataKindThreeD:      {},
	MetadataKindTransaction: {},
}

// CarriesText reports whether posts of this kind expose a content field.
func (k MetadataKind) CarriesText() bool {
	_, ok := textBearingKinds[k]
	return ok
}

type PostMetadata struct {
	Kind    MetadataKind
	Content string
}

// PostRef is the shallow parent reference carried by comments.
type PostRef struct {
	ID           PostID
	AuthorHandle string
}

type Post struct {
	ID        PostID
	Author    Account
	CommentOn *PostRef
	Metadata  PostMetadata
	Timestamp time.Time
}

// Text returns the renderable text of the post. ok is false when the metadata kind
// carries no text or the content is blank.
func (p Post) Text() (string, bool) {
	if !p.Metadata.Kind.CarriesText() {
		return "", false
	}
	if strings.TrimSpace(p.Metadata.Content) == "" {
		return "", false
	}

	return p.Metadata.Content, true
}

func (p Post) IsComment() bool {
	return p.CommentOn != nil && p.CommentOn.ID != ""
}

package gitlab

import "context"

// Tag represents a tag in a GitLab project.
//
// Tag instances are typically created through a Project:
//
//	tag, err := project.CreateTag(ctx, "v1.2.0", "main",
//	    gitlab.WithTagMessage("Release 1.2.0"),
//	)
type Tag struct {
	client  *Client
	project string
	data    *TagData
}

// Refresh refreshes the tag data from GitLab.
func (t *Tag) Refresh(ctx context.Context) error {
	data, err := t.client.provider.GetTag(ctx, t.project, t.data.Name)
	if err != nil {
		return WrapHTTPError(err, 0, "failed to refresh tag")
	}
	t.data = data
	return nil
}

// Name returns the tag name.
func (t *Tag) Name() string {
	return t.data.Name
}

// Message returns the annotation message. Empty for lightweight tags.
func (t *Tag) Message() string {
	return t.data.Message
}

// IsProtected returns true if the tag is protected.
func (t *Tag) IsProtected() bool {
	return t.data.Protected
}

// CommitSHA returns the SHA of the commit the tag points at.
// Returns empty string if the provider did not report a commit.
func (t *Tag) CommitSHA() string {
	if t.data.Commit == nil {
		return ""
	}
	return t.data.Commit.SHA
}

// Data returns the underlying tag data.
// This provides access to all tag fields including the commit.
func (t *Tag) Data() *TagData {
	return t.data
}

package email

import "strconv"

// SendMemberRemovedEmail tells a user they were removed from a board.
func (c *Client) SendMemberRemovedEmail(to, userName string, boardID int64) error {
	data := map[string]string{
		"UserName": userName,
		"BoardID":  strconv.FormatInt(boardID, 10),
	}

	return c.SendEmail(to, "You were removed from a board", TemplateMemberRemoved, data)
}

// SendRoleChangedEmail tells a user their role on a board changed.
func (c *Client) SendRoleChangedEmail(to, userName string, boardID int64, role string) error {
	data := map[string]string{
		"UserName": userName,
		"BoardID":  strconv.FormatInt(boardID, 10),
		"Role":     role,
	}

	return c.SendEmail(to, "Your board role changed", TemplateRoleChanged, data)
}

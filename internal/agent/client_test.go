package agent

import "errors"

// scriptedClient returns canned responses in order, recording every prompt
// it receives. It stands in for the completion service so parsing and repair
// branches can be exercised deterministically.
type scriptedClient struct {
	responses []string
	err       error
	prompts   []string
}

func (c *scriptedClient) Complete(prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "", errors.New("scripted client exhausted")
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func (c *scriptedClient) calls() int {
	return len(c.prompts)
}

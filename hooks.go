package okto8

// Hook observes the machine at a point of the console loop.
type Hook func(m *Machine)

// AddBeforeStepHook adds a hook that runs before every step of the machine
func (c *Console) AddBeforeStepHook(h Hook) int {
	c.beforeStepHooks = append(c.beforeStepHooks, h)

	return len(c.beforeStepHooks)
}

// AddAfterStepHook adds a hook that runs after every step of the machine
func (c *Console) AddAfterStepHook(h Hook) int {
	c.afterStepHooks = append(c.afterStepHooks, h)

	return len(c.afterStepHooks)
}

// AddErrorHook adds a hook that runs after a component error
func (c *Console) AddErrorHook(h Hook) int {
	c.errorHooks = append(c.errorHooks, h)

	return len(c.errorHooks)
}

func (c *Console) runHooks(hooks []Hook) {
	for _, h := range hooks {
		h(c.Machine)
	}
}

package cpu

func (c *Cpu) pha() {
	if c.Regs.AWidthIs16() {
		c.pushWord(c.Regs.A)
	} else {
		c.pushByte(uint8(c.Regs.A))
	}
}

func (c *Cpu) pla() {
	c.internalCycle()
	if c.Regs.AWidthIs16() {
		v := c.pullWord()
		c.Regs.A = v
		c.setNZ16(v)
	} else {
		v := c.pullByte()
		c.Regs.SetA8Low(v)
		c.setNZ8(v)
	}
}

func (c *Cpu) phx() {
	if c.Regs.IWidthIs16() {
		c.pushWord(c.Regs.X)
	} else {
		c.pushByte(uint8(c.Regs.X))
	}
}

func (c *Cpu) plx() {
	c.internalCycle()
	if c.Regs.IWidthIs16() {
		v := c.pullWord()
		c.writeX(v)
		c.setNZ16(v)
	} else {
		v := c.pullByte()
		c.writeX(uint16(v))
		c.setNZ8(v)
	}
}

func (c *Cpu) phy() {
	if c.Regs.IWidthIs16() {
		c.pushWord(c.Regs.Y)
	} else {
		c.pushByte(uint8(c.Regs.Y))
	}
}

func (c *Cpu) ply() {
	c.internalCycle()
	if c.Regs.IWidthIs16() {
		v := c.pullWord()
		c.writeY(v)
		c.setNZ16(v)
	} else {
		v := c.pullByte()
		c.writeY(uint16(v))
		c.setNZ8(v)
	}
}

func (c *Cpu) php() { c.pushByte(uint8(c.Regs.PSW())) }

func (c *Cpu) plp() {
	c.internalCycle()
	c.Regs.SetPSW(PSW(c.pullByte()))
}

func (c *Cpu) pea() {
	v := c.fetchWord()
	c.pushWord(v)
}

func (c *Cpu) pei() {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	v := c.readWord(0, c.directBase(d8))
	c.pushWord(v)
}

func (c *Cpu) per() {
	disp := int16(c.fetchWord())
	c.internalCycle()
	c.pushWord(uint16(int32(c.Regs.PC) + int32(disp)))
}

func (c *Cpu) phb() { c.pushByte(c.Regs.DB) }

func (c *Cpu) plb() {
	c.internalCycle()
	v := c.pullByte()
	c.Regs.DB = v
	c.setNZ8(v)
}

func (c *Cpu) phd() { c.pushWord(c.Regs.D) }

func (c *Cpu) pld() {
	c.internalCycle()
	v := c.pullWord()
	c.Regs.D = v
	c.setNZ16(v)
}

func (c *Cpu) phk() { c.pushByte(c.Regs.PB) }

package register

import (
	_ "github.com/xxxsen/zonegen/internal/generator/forward"
	_ "github.com/xxxsen/zonegen/internal/generator/reverse"
)

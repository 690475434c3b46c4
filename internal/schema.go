package internal

// ReadChannelSchema pairs the header row with the unit row.
//
// Both rows are kept as strings. Header cells that are blank are dropped; a
// unit row shorter than the header leaves the trailing channels with an
// empty unit. When a name repeats, the unit map keeps the first occurrence.
func ReadChannelSchema(header, units string) ChannelSchema {
	names := splitRow(header)
	unitCells := splitRow(units)

	schema := ChannelSchema{
		Channels: make([]Channel, 0, len(names)),
		Units:    make(map[string]string, len(names)),
		Width:    len(names),
	}

	for i, name := range names {
		if name == "" {
			continue
		}
		unit := ""
		if i < len(unitCells) {
			unit = unitCells[i]
		}
		schema.Channels = append(schema.Channels, Channel{Name: name, Unit: unit, Column: i})
		if _, seen := schema.Units[name]; seen {
			LogDebug("duplicate channel %q at column %d", name, i)
			continue
		}
		schema.Units[name] = unit
	}

	return schema
}

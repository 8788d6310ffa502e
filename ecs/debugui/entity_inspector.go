package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/carryloop/ecs"
)

// EntityInfo is one row of the entity list.
type EntityInfo struct {
	ID          ecs.EntityId
	ArchetypeID uint32
	Components  []string
}

// FieldRow is a flattened component field. Nested structs are expanded with
// dotted paths.
type FieldRow struct {
	Path  string
	Value reflect.Value
}

// EntityInspector is a window listing every entity with an editor for the
// selected one's numeric, boolean and string fields.
type EntityInspector struct {
	filter   string
	selected ecs.EntityId
	hasSel   bool
	cache    *fieldCache
}

func NewEntityInspector() *EntityInspector {
	return &EntityInspector{cache: newFieldCache()}
}

// Spawn adds the window to the scheduler's storage.
func (ei *EntityInspector) Spawn(scheduler *ecs.Scheduler) {
	storage := scheduler.Storage()
	storage.Spawn(ImguiItem{
		Render: func() { ei.Render(storage) },
	})
}

// Select makes id the inspected entity.
func (ei *EntityInspector) Select(id ecs.EntityId) {
	ei.selected = id
	ei.hasSel = true
}

// Entities lists the live entities whose component names contain filter,
// case-insensitively. Archetypes come in creation order.
func Entities(storage *ecs.Storage, filter string) []EntityInfo {
	filter = strings.ToLower(filter)

	var entities []EntityInfo
	for archetype := range storage.Archetypes() {
		names := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			names[i] = t.String()
		}
		if filter != "" && !strings.Contains(strings.ToLower(strings.Join(names, " ")), filter) {
			continue
		}

		for id := range archetype.Iter() {
			entities = append(entities, EntityInfo{ID: id, ArchetypeID: archetype.ID(), Components: names})
		}
	}
	return entities
}

// Fields flattens the exported fields of the component pointed to by
// component. Values are addressable so edits write through to storage.
func (ei *EntityInspector) Fields(component any) []FieldRow {
	val := reflect.ValueOf(component)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return nil
	}
	return ei.appendFields(nil, "", val.Elem())
}

func (ei *EntityInspector) appendFields(rows []FieldRow, prefix string, val reflect.Value) []FieldRow {
	for _, field := range ei.cache.get(val.Type()) {
		fv := val.Field(field.Index)
		path := prefix + field.Name
		if fv.Kind() == reflect.Struct && fv.Type().NumField() > 0 {
			rows = ei.appendFields(rows, path+".", fv)
			continue
		}
		rows = append(rows, FieldRow{Path: path, Value: fv})
	}
	return rows
}

func (ei *EntityInspector) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(760, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(250, 400), imgui.CondOnce)

	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Component...", &ei.filter, imgui.InputTextFlagsNone, nil)

	entities := Entities(storage, ei.filter)
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 150), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range entities {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			isSelected := ei.hasSel && ei.selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ei.Select(entity.ID)
			}
			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Components, ", "))
		}
		imgui.EndTable()
	}

	imgui.Separator()
	ei.renderSelected(storage)
	imgui.End()
}

func (ei *EntityInspector) renderSelected(storage *ecs.Storage) {
	if !ei.hasSel {
		imgui.Text("No entity selected")
		return
	}

	var archetype *ecs.Archetype
	for a := range storage.Archetypes() {
		if a.ID() == ei.selected.ArchetypeId() {
			archetype = a
			break
		}
	}
	if archetype == nil {
		imgui.Text(fmt.Sprintf("Entity %d not found", ei.selected))
		return
	}

	for _, compType := range archetype.Types() {
		component := storage.GetComponent(ei.selected, compType)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			for _, row := range ei.Fields(component) {
				renderField(row)
			}
			imgui.TreePop()
		}
	}
}

func renderField(row FieldRow) {
	label := "##" + row.Path
	val := row.Value

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(row.Path)
		imgui.SameLine()
		imgui.SetNextItemWidth(120)
		if imgui.InputInt(label, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(row.Path)
		imgui.SameLine()
		imgui.SetNextItemWidth(120)
		if imgui.InputFloat(label, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(row.Path, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(row.Path)
		imgui.SameLine()
		imgui.SetNextItemWidth(160)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", row.Path, val.Interface()))
	}
}

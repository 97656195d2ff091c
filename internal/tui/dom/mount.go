package dom

// DefaultContainerID is the mount point portals use when none is given.
const DefaultContainerID = "portal-menu-container"

// RenderFunc renders overlay content on demand.
type RenderFunc func() string

type mountChild struct {
	owner  string
	render RenderFunc
}

// MountPoint is a shared overlay container. It exists while at least one
// owner is attached to it.
type MountPoint struct {
	id       string
	children []mountChild
}

// ID returns the container id.
func (mp *MountPoint) ID() string {
	return mp.id
}

// Owners returns the owner ids attached, in attach order.
func (mp *MountPoint) Owners() []string {
	owners := make([]string, len(mp.children))
	for i, c := range mp.children {
		owners[i] = c.owner
	}
	return owners
}

// Render renders every attached child, oldest first.
func (mp *MountPoint) Render() []string {
	out := make([]string, 0, len(mp.children))
	for _, c := range mp.children {
		out = append(out, c.render())
	}
	return out
}

// Mount attaches owner's content to the container, creating the container
// on first use. Mounting the same owner twice replaces its render function.
func (d *Document) Mount(containerID, owner string, render RenderFunc) *MountPoint {
	if containerID == "" {
		containerID = DefaultContainerID
	}
	mp, ok := d.mounts[containerID]
	if !ok {
		mp = &MountPoint{id: containerID}
		d.mounts[containerID] = mp
		d.order = append(d.order, containerID)
		d.log.Debug("mount point created", "container", containerID)
	}
	for i, c := range mp.children {
		if c.owner == owner {
			mp.children[i].render = render
			return mp
		}
	}
	mp.children = append(mp.children, mountChild{owner: owner, render: render})
	return mp
}

// Unmount detaches owner and removes the container once nothing is left.
func (d *Document) Unmount(containerID, owner string) {
	if containerID == "" {
		containerID = DefaultContainerID
	}
	mp, ok := d.mounts[containerID]
	if !ok {
		return
	}
	for i, c := range mp.children {
		if c.owner == owner {
			mp.children = append(mp.children[:i], mp.children[i+1:]...)
			break
		}
	}
	if len(mp.children) > 0 {
		return
	}
	delete(d.mounts, containerID)
	for i, id := range d.order {
		if id == containerID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	d.log.Debug("mount point removed", "container", containerID)
}

// MountPoint returns the container with id, or nil if it does not exist.
func (d *Document) MountPoint(id string) *MountPoint {
	return d.mounts[id]
}

// Overlays renders every mounted child of every container in creation order.
func (d *Document) Overlays() []string {
	var out []string
	for _, id := range d.order {
		out = append(out, d.mounts[id].Render()...)
	}
	return out
}

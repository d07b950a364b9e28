package render

import "github.com/jonathan/resume-wizard/internal/types"

func init() {
	register(types.TemplateModern, modernMarkup)
}

// modernMarkup is the single-column sans-serif layout with a blue accent
// line under the header and uppercase section headings.
const modernMarkup = `<style>
.modern { font-family: Helvetica, Arial, sans-serif; font-size: 10px; color: #1a1a1a; }
.modern .name { font-size: 20px; font-weight: bold; margin-bottom: 2px; }
.modern .headline { font-size: 11px; color: #666; margin-bottom: 2px; }
.modern .contact { font-size: 9px; color: #666; }
.modern .linkedin { font-size: 9px; color: #2563eb; }
.modern .accent { height: 2px; background: #2563eb; width: 64px; margin: 8px 0 10px; }
.modern h2 { font-size: 11px; font-weight: bold; text-transform: uppercase; letter-spacing: 1px; color: #1a1a1a; border-bottom: 1px solid #e5e5e5; padding-bottom: 2px; margin: 10px 0 5px; }
.modern .row { display: flex; justify-content: space-between; }
.modern .job-title { font-weight: bold; }
.modern .company { color: #4a4a4a; }
.modern .dates { font-size: 9px; color: #999; }
.modern ul { margin: 3px 0 0 0; padding: 0; list-style: none; }
.modern li { margin-bottom: 2px; color: #4a4a4a; }
.modern li::before { content: "\25AA"; color: #2563eb; margin-right: 5px; }
.modern .honors { font-style: italic; color: #666; font-size: 9px; }
</style>
<div class="modern">
  <div class="name">{{.Name}}</div>
  {{if .Title}}<div class="headline">{{.Title}}</div>{{end}}
  <div class="contact">{{.ContactLine}}</div>
  {{if .LinkedIn}}<div class="linkedin">{{.LinkedIn}}</div>{{end}}
  <div class="accent"></div>
  {{if .Summary}}
  <section class="summary">
    <h2>Professional Summary</h2>
    <p>{{.Summary}}</p>
  </section>
  {{end}}
  {{if .Experience}}
  <section class="experience">
    <h2>Experience</h2>
    {{range .Experience}}
    <div class="entry">
      <div class="row"><span class="job-title">{{.Title}}</span><span class="dates">{{.Dates}}</span></div>
      <div class="company">{{.Company}}</div>
      {{if .Bullets}}
      <ul>
        {{range .Bullets}}<li>{{.}}</li>
        {{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .Education}}
  <section class="education">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <div class="row"><span class="job-title">{{.Degree}}</span><span class="dates">{{.Dates}}</span></div>
      <div class="company">{{.Institution}}</div>
      {{if .Honors}}<div class="honors">{{.Honors}}</div>{{end}}
      {{if .GPA}}<div class="honors">GPA: {{.GPA}}</div>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .Skills}}
  <section class="skills">
    <h2>Skills</h2>
    <p>{{.SkillsLine}}</p>
  </section>
  {{end}}
  {{if .Projects}}
  <section class="projects">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <span class="job-title">{{.Name}}</span>{{if .URL}} <span class="linkedin">{{.URL}}</span>{{end}}
      <p>{{.Description}}</p>
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .Certifications}}
  <section class="certifications">
    <h2>Certifications</h2>
    {{range .Certifications}}<p>{{.}}</p>
    {{end}}
  </section>
  {{end}}
  {{if .Languages}}
  <section class="languages">
    <h2>Languages</h2>
    <p>{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
  </section>
  {{end}}
</div>`
